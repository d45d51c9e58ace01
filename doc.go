// Package jieba implements the core of a dictionary- and HMM-based
// Chinese word segmentation engine: a prefix dictionary over an
// Aho-Corasick automaton, a directed acyclic graph of candidate word
// spans, a maximum-log-probability route over that graph, and a BMES
// hidden Markov model with Viterbi decoding for runs of characters the
// dictionary does not cover.
package jieba
