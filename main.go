/**
 * Copyright 2015 Zach Kanzler
 */

package main

import "github.com/they4kman/goblocks/cmd"

func main() {
	cmd.Execute()
}
