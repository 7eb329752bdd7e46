package cli

var ReadLine = readLine
