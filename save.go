package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
)

var (
	errInvalidPosition = errors.New("invalid position")
	errCorruptBoard    = errors.New("corrupt board")
	errOpenSave        = errors.New("error when opening the file")
)

// save writes the board as eight lines of eight cells.
func (board grid) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errOpenSave, err)
	}
	w := bufio.NewWriter(f)
	for _, row := range board.rows() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.WithField("path", path).Info("board saved")
	return nil
}

// load reads a board written by save. The receiver is untouched on error.
func (board *grid) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errOpenSave, err)
	}
	defer f.Close()
	rows := make([]string, 0, 8)
	scanner := bufio.NewScanner(f)
	for len(rows) < 8 && scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	loaded, err := parseRows(rows)
	if err != nil {
		return err
	}
	*board = loaded
	log.WithField("path", path).Info("board loaded")
	return nil
}
