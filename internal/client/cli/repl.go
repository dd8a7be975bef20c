package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Products(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	Orders(ctx context.Context) error
	AllOrders(ctx context.Context) error
	AddProduct(ctx context.Context) error
}

const (
	helpLoggedOut = "Comandos: login, register, help, exit"
	helpLoggedIn  = "Comandos: products, buy [id] [cantidad], orders, allorders, addproduct, whoami, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the POS client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           show available commands
//	  - login          authenticate
//	  - register       create an account and log in
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - products       show the catalog
//	  - buy [id] [n]   order n units of a product (prompts when omitted)
//	  - orders         order history of the current user
//	  - allorders      every order on the server
//	  - addproduct     add a product to the catalog
//	  - whoami         show the current user and token expiry
//	  - logout         log out
//
// Errors returned by command handlers are I/O errors only; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "pos %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			fmt.Fprintln(w, "Inicie sesión primero (login)")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "products":
			cmdErr = a.Products(ctx)

		case "buy":
			cmdErr = a.Buy(ctx, args)

		case "orders":
			cmdErr = a.Orders(ctx)

		case "allorders":
			cmdErr = a.AllOrders(ctx)

		case "addproduct":
			cmdErr = a.AddProduct(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "¡Hasta luego!")
			return

		default:
			fmt.Fprintln(w, "Comando desconocido:", cmd)
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, io.EOF) {
				return
			}
			fmt.Fprintln(w, "error de entrada:", cmdErr)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "products", "buy", "orders", "allorders", "addproduct":
		return true
	}
	return false
}
