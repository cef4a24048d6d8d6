// Package tasks holds the fixed catalog of tasks a player can be dealt.
package tasks

import (
	"sort"
	"time"

	"github.com/KirkDiggler/charades/internal/models"
)

// Catalog is a read-only table of task definitions keyed by id
type Catalog struct {
	tasks map[int]*models.Task
	ids   []int
}

var defaultCatalog = New([]*models.Task{
	{ID: 1, Description: "Explain the word without using any word that shares its root", TimeLimit: 60 * time.Second, Points: 1},
	{ID: 2, Description: "Read the word backwards", TimeLimit: 60 * time.Second, Points: 1},
	{ID: 3, Description: "Explain the word using only emoji or GIFs", TimeLimit: 120 * time.Second, Points: 3},
	{ID: 4, Description: "The others ask you questions and you may only answer yes or no", TimeLimit: 120 * time.Second, Points: 5},
	{ID: 5, Description: "Explain the word making ONLY sounds", TimeLimit: 90 * time.Second, Points: 3},
	{ID: 6, Description: "Compose a verse with a rhyme for the word (e.g. \"a sailor on a tiny boat, ate a whole ***\" for goat)", TimeLimit: 120 * time.Second, Points: 4},
	{ID: 7, Description: "Explain the word using only verbs", TimeLimit: 60 * time.Second, Points: 2},
})

// Default returns the catalog the game is played with
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog from the given tasks. Later duplicates of an id win.
func New(tasks []*models.Task) *Catalog {
	c := &Catalog{
		tasks: make(map[int]*models.Task, len(tasks)),
	}
	for _, t := range tasks {
		if _, ok := c.tasks[t.ID]; !ok {
			c.ids = append(c.ids, t.ID)
		}
		c.tasks[t.ID] = t
	}
	sort.Ints(c.ids)

	return c
}

// Get looks up a task by id. The returned task is a copy.
func (c *Catalog) Get(id int) (models.Task, bool) {
	t, ok := c.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return *t, true
}

// Has reports whether the id is in the catalog
func (c *Catalog) Has(id int) bool {
	_, ok := c.tasks[id]
	return ok
}

// IDs returns every task id in ascending order
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of tasks
func (c *Catalog) Len() int {
	return len(c.ids)
}
