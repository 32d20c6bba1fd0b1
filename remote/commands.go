package remote

import "github.com/sparques/irladder/ladder"

// Command is a named action bound to a keypad button.
type Command struct {
	ID      ladder.State
	Name    string
	Payload uint32
}

// Commands maps each button to its 24-bit payload. Payloads are unique.
var Commands = [...]Command{
	{ladder.Button1, "exit", 0x54D400},
	{ladder.Button2, "ok", 0xC94900},
	{ladder.Button3, "down", 0xCB4B00},
	{ladder.Button4, "up", 0xCA4A00},
	{ladder.Button5, "menu", 0xD25200},
	{ladder.Button6, "guide", 0x0E8709},
	{ladder.Button7, "power", 0xBD3D00},
	{ladder.Button8, "input", 0x850500},
}

// Lookup returns the command bound to s. None has no command.
func Lookup(s ladder.State) (Command, bool) {
	if s < ladder.Button1 || s > ladder.Button8 {
		return Command{}, false
	}
	return Commands[s-ladder.Button1], true
}

// ByPayload finds the command that sends payload.
func ByPayload(payload uint32) (Command, bool) {
	for _, c := range Commands {
		if c.Payload == payload {
			return c, true
		}
	}
	return Command{}, false
}
