package diag

import (
	"fmt"
)

// Code identifies one diagnostic kind. Ranges are reserved per stage.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Syntactic
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectTypeName    Code = 2004
	SynExpectMember      Code = 2005

	// Rule engine
	RuleInfo                Code = 3000
	RuleUnorderableModifier Code = 3001
	RuleConflictingEdit     Code = 3002
	RuleUnknownDeclaration  Code = 3003

	// Apply / IO
	IOInfo           Code = 4000
	IOReadFailed     Code = 4001
	IOWriteFailed    Code = 4002
	ApplyStaleSource Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:             "unknown",
	LexInfo:                 "lexical info",
	LexUnknownChar:          "unknown character",
	SynInfo:                 "syntax info",
	SynUnexpectedToken:      "unexpected token",
	SynUnclosedDelimiter:    "unclosed delimiter",
	SynExpectIdentifier:     "expected identifier",
	SynExpectTypeName:       "expected type name",
	SynExpectMember:         "expected member declaration",
	RuleInfo:                "rule info",
	RuleUnorderableModifier: "modifier missing from canonical order table",
	RuleConflictingEdit:     "conflicting staged edits",
	RuleUnknownDeclaration:  "unknown declaration kind",
	IOInfo:                  "io info",
	IOReadFailed:            "failed to read file",
	IOWriteFailed:           "failed to write file",
	ApplyStaleSource:        "source changed under staged edits",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RULE%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
