package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmClearWorkspace
)

type ActionType int

const (
	ActionPlace ActionType = iota
	ActionRemove
	ActionBond
	ActionBreak
	ActionMove
)

const (
	defaultCellWidth  = 8.0  // pixels per terminal column
	defaultCellHeight = 20.0 // pixels per terminal row
	statusLines       = 1
)
