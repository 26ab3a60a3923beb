package main

import (
	"fmt"
	"os"
	"os/user"

	"sunaba/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the Sunaba REPL, %s!\n", currentUser.Username)
	fmt.Println("End a program with a blank line to parse it.")
	repl.Start(os.Stdin)
}
