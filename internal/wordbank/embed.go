package wordbank

import (
	"embed"

	"github.com/KirkDiggler/charades/internal/tasks"
)

//go:embed data
var embedded embed.FS

// Embedded returns the word bank that ships with the bot
func Embedded() *Source {
	return &Source{
		FS:      embedded,
		Root:    "data",
		Catalog: tasks.Default(),
	}
}
