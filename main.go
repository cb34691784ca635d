package main

import "leetcode-tracker/cmd"

func main() {
	cmd.Execute()
}
