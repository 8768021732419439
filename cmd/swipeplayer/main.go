// Command swipeplayer is the desktop launcher of the player.
package main

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	Execute()
}
