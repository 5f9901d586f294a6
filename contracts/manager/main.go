package main

// Entry points are exported per function for the wasm host; nothing runs
// through main itself.
func main() {}
