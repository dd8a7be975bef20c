package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls   []string
	buyArgs []string
	err     error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error   { return f.record("whoami") }
func (f *fakeExec) Products(context.Context) error { return f.record("products") }
func (f *fakeExec) Buy(_ context.Context, args []string) error {
	f.buyArgs = args
	return f.record("buy")
}
func (f *fakeExec) Orders(context.Context) error     { return f.record("orders") }
func (f *fakeExec) AllOrders(context.Context) error  { return f.record("allorders") }
func (f *fakeExec) AddProduct(context.Context) error { return f.record("addproduct") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"products",
		"login",
		"help",
		"products",
		"BUY 2 3",
		"orders",
		"allorders",
		"addproduct",
		"whoami",
		"",
		"foobar",
		"logout",
		"exit",
		"products",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "products", "buy", "orders", "allorders", "addproduct", "whoami", "logout"}, exec.calls)
	assert.Equal(t, []string{"2", "3"}, exec.buyArgs)

	s := out.String()
	assert.Contains(t, s, "pos (status)> ")
	assert.Contains(t, s, helpLoggedOut)
	assert.Contains(t, s, helpLoggedIn)
	assert.Contains(t, s, "Inicie sesión primero (login)")
	assert.Contains(t, s, "Comando desconocido: foobar")
	assert.Contains(t, s, "¡Hasta luego!")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr("login"), &out)

	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPL_InputErrorFromCommand(t *testing.T) {
	exec := &fakeExec{err: io.EOF}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr("register\nlogin\n"), &out)

	assert.Equal(t, []string{"register"}, exec.calls, "EOF inside a command ends the session")
}
