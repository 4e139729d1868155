package domain

import "errors"

var (
	ErrOutOfBounds  = errors.New("position is out of map bounds")
	ErrCellOccupied = errors.New("cell is occupied")
	// ErrNoCharacterAt - клетка занята символом персонажа, но в реестре его нет.
	// Это нарушение согласованности карты и реестра, а не игровая ситуация.
	ErrNoCharacterAt = errors.New("no registered character at position")
	ErrInvalidLayout = errors.New("invalid map layout")
	// ErrNotACharacter - символ персонажа не из S, C, O.
	ErrNotACharacter = errors.New("symbol is not a character marker")
)
