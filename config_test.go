package main

import (
	"flag"
	"io/ioutil"
	"os"

	. "gopkg.in/check.v1"
)

type ConfigSuite struct{}

var _ = Suite(&ConfigSuite{})

func flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("consolechess", flag.ContinueOnError)
	fs.SetOutput(ioutil.Discard)
	return fs
}

func (s *ConfigSuite) TearDownTest(c *C) {
	os.Unsetenv("CHESS_MAX_TURNS")
	os.Unsetenv("CHESS_OPPONENT")
}

func (s *ConfigSuite) TestDefaults(c *C) {
	cfg, err := loadConfig(flagSet(), nil)
	c.Assert(err, IsNil)
	c.Assert(cfg.SaveFile, Equals, "save.txt")
	c.Assert(cfg.ClearScreen, Equals, true)
	c.Assert(cfg.LogLevel, Equals, "info")
	c.Assert(cfg.Addr, Equals, ":8080")
	c.Assert(cfg.MaxTurns, Equals, 0)
	c.Assert(cfg.Serve, Equals, false)
}

func (s *ConfigSuite) TestEnvironmentAndFlags(c *C) {
	c.Assert(os.Setenv("CHESS_MAX_TURNS", "12"), IsNil)
	c.Assert(os.Setenv("CHESS_OPPONENT", "player"), IsNil)
	cfg, err := loadConfig(flagSet(), []string{"-opponent", "ia", "-load", "yes", "-save-file", "game.txt", "-serve"})
	c.Assert(err, IsNil)
	c.Assert(cfg.MaxTurns, Equals, 12)
	c.Assert(cfg.Opponent, Equals, opponentIA)
	c.Assert(cfg.Load, Equals, answerYes)
	c.Assert(cfg.SaveFile, Equals, "game.txt")
	c.Assert(cfg.Serve, Equals, true)
}

func (s *ConfigSuite) TestInvalidValues(c *C) {
	_, err := loadConfig(flagSet(), []string{"-opponent", "goose"})
	c.Assert(err, ErrorMatches, `unknown opponent "goose"`)
	_, err = loadConfig(flagSet(), []string{"-load", "maybe"})
	c.Assert(err, ErrorMatches, `unknown load answer "maybe"`)
	_, err = loadConfig(flagSet(), []string{"-max-turns", "-3"})
	c.Assert(err, ErrorMatches, "negative max turns -3")

	c.Assert(os.Setenv("CHESS_MAX_TURNS", "many"), IsNil)
	_, err = loadConfig(flagSet(), nil)
	c.Assert(err, ErrorMatches, "parse env: .*")
}
