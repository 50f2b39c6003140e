// Package lang implements a small typed expression language: tokenizer,
// recursive-descent parser, static checker and tree-walking interpreter.
//
// Pipeline: source → Tokenizer → Parser → Checker → Interpreter → Object
//
// A Session owns one instance of each stage and exposes the Feed/Run pair
// that line-based hosts drive.
package lang
