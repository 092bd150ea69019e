package dup

//fixedstr:str Twice = "aa"

//fixedstr:str Twice = "bb"
