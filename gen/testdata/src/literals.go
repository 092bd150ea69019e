// Package sample carries fixedstr directives for scanner tests.
package sample

//fixedstr:str Greeting = "Hello World!"

//fixedstr:str Empty = ""

// A plain comment the scanner must ignore.

//fixedstr:str Tag[4] = "ABCD"

var unrelated = "not a directive"
