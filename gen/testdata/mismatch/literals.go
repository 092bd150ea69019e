package mismatch

//fixedstr:str Bad[3] = "ABCD"
