// JSON subset decoder (single-pass recursive descent)
//
// the parser accepts the following restricted dialect of JSON:
//   1. strings are raw byte runs between two quotes. there is NO escape
//      sequence handling, so a quote can never appear inside a string and
//      a backslash passes through verbatim.
//   2. numbers are integer digit runs with an optional single leading sign,
//      stored as float64. no fractional parts, no exponents.
//   3. whitespace between values is space, tab or newline. carriage return
//      is not whitespace.
//   4. the source must not contain a NUL byte.
//
// examples:
//
//   [true, false, "hello", {}, -12]
//   {"a": 1, "b": [null, "x"]}
//
// BNF:
//  <value>           :: <object> | <array> | <string> | <number> | <boolean> | <null> ;
//
//  <object>          :: "{" [ <member> ( "," <member> )* ] "}" ;
//  <member>          :: <whitespace> <string> ":" <value> ;
//
//  <array>           :: "[" <whitespace> [ <value> ( "," <value> )* ] "]" ;
//
//  <string>          :: "\"" <string-char>* "\"" ;
//  <string-char>     :: <any byte except "\"" and NUL> ;
//
//  <number>          :: [ "-" | "+" ] <decimal-digit>+ ;
//  <decimal-digit>   :: "0" | ... | "9" ;
//
//  <boolean>         :: "true" | "false" ;
//  <null>            :: "null" ;
//
//  <whitespace>      :: <whitespace-char>* ;
//  <whitespace-char> :: " " | "\t" | "\n" ;

package ruston
