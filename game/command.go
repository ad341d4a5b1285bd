package game

import "fmt"

type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandHold
	CommandReset
)

var Commands = []Command{
	CommandMoveLeft,
	CommandMoveRight,
	CommandSoftDrop,
	CommandRotate,
	CommandHardDrop,
	CommandHold,
	CommandReset,
}

var commandNames = map[Command]string{
	CommandMoveLeft:  "left",
	CommandMoveRight: "right",
	CommandSoftDrop:  "down",
	CommandRotate:    "rotate",
	CommandHardDrop:  "drop",
	CommandHold:      "hold",
	CommandReset:     "reset",
}

func (command Command) String() string {
	if name, ok := commandNames[command]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(command))
}

func ParseCommand(name string) (Command, error) {
	for command, commandName := range commandNames {
		if commandName == name {
			return command, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}
