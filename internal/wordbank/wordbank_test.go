package wordbank

import (
	"testing"
	"testing/fstest"

	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/stretchr/testify/suite"
)

type LoaderTestSuite struct {
	suite.Suite
	catalog *tasks.Catalog
}

func (s *LoaderTestSuite) SetupTest() {
	s.catalog = tasks.Default()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) load(files fstest.MapFS) (Bank, error) {
	source := &Source{FS: files, Catalog: s.catalog}
	return source.Load()
}

func (s *LoaderTestSuite) TestLoad_AccumulatesAcrossFiles() {
	bank, err := s.load(fstest.MapFS{
		"a/animals.yaml": {Data: []byte("theme: Animals\n1: [cat, dog]\n3: [owl]\n")},
		"b/food.yml":     {Data: []byte("1: [soup]\ntheme: Food\n")},
	})
	s.Require().NoError(err)

	s.Equal([]models.WordEntry{
		{Theme: "Animals", Word: "cat"},
		{Theme: "Animals", Word: "dog"},
		{Theme: "Food", Word: "soup"},
	}, bank[1])
	s.Equal([]models.WordEntry{{Theme: "Animals", Word: "owl"}}, bank[3])
	s.Equal(4, bank.Total())
	s.Equal([]int{1, 3}, bank.TaskIDs())
}

func (s *LoaderTestSuite) TestLoad_SkipsOtherFiles() {
	bank, err := s.load(fstest.MapFS{
		"README.md":    {Data: []byte("# not a theme")},
		".hidden.yaml": {Data: []byte("garbage: [")},
		"animals.yaml": {Data: []byte("theme: Animals\n2: [yak]\n")},
	})
	s.Require().NoError(err)
	s.Equal(1, bank.Total())
}

func (s *LoaderTestSuite) TestLoad_MissingTheme() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("1: [cat]\n")},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrLoadFailure)
	s.Contains(err.Error(), "theme")
}

func (s *LoaderTestSuite) TestLoad_UnknownTaskID() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("theme: Animals\n42: [cat]\n")},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrLoadFailure)
	s.Contains(err.Error(), "unknown task id 42")
}

func (s *LoaderTestSuite) TestLoad_NonNumericKey() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("theme: Animals\ncolour: [red]\n")},
	})
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_WordsMustBeAList() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("theme: Animals\n1: cat\n")},
	})
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_InvalidYAML() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("theme: [unterminated\n")},
	})
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_EmptyFile() {
	_, err := s.load(fstest.MapFS{
		"animals.yaml": {Data: []byte("")},
	})
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_OneBadFileFailsEverything() {
	bank, err := s.load(fstest.MapFS{
		"a.yaml": {Data: []byte("theme: Good\n1: [cat]\n")},
		"b.yaml": {Data: []byte("theme: Bad\n9: [dog]\n")},
	})
	s.ErrorIs(err, ErrLoadFailure)
	s.Nil(bank)
}

func (s *LoaderTestSuite) TestLoad_EmptyBank() {
	_, err := s.load(fstest.MapFS{
		"notes.txt": {Data: []byte("nothing here")},
	})
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_MissingRoot() {
	source := &Source{FS: fstest.MapFS{}, Root: "nope", Catalog: s.catalog}
	_, err := source.Load()
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestLoad_NilSource() {
	var source *Source
	_, err := source.Load()
	s.ErrorIs(err, ErrLoadFailure)
}

func (s *LoaderTestSuite) TestClone_IsIndependent() {
	bank := Bank{1: {{Theme: "T", Word: "a"}, {Theme: "T", Word: "b"}}}

	clone := bank.Clone()
	clone[1] = clone[1][:1]
	clone[2] = []models.WordEntry{{Theme: "T", Word: "c"}}

	s.Len(bank[1], 2)
	s.NotContains(bank, 2)
}

func (s *LoaderTestSuite) TestEmbedded_CoversEveryTask() {
	bank, err := Embedded().Load()
	s.Require().NoError(err)

	for _, id := range s.catalog.IDs() {
		s.NotEmpty(bank[id], "task %d has no words", id)
	}
}
