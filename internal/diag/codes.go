package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedExtendedId   Code = 1005
	LexBadBitString             Code = 1006

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectKeyword      Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnsupportedUnit    Code = 2006
	SynExpectName         Code = 2007
	SynExpectEntityAspect Code = 2008
	SynMismatchedEndName  Code = 2009
	SynEmptyList          Code = 2010
	SynNestingTooDeep     Code = 2011

	// IO
	IOLoadFileError Code = 4001

	// Проект / конфигурация
	PrjConfigInvalid Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedExtendedId:   "Unterminated extended identifier",
	LexBadBitString:             "Malformed bit string literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Missing semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectKeyword:            "Expected keyword",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnsupportedUnit:          "Unsupported design unit",
	SynExpectName:               "Expected name",
	SynExpectEntityAspect:       "Expected entity aspect",
	SynMismatchedEndName:        "End label does not match declaration",
	SynEmptyList:                "Empty list",
	SynNestingTooDeep:           "Nesting too deep",
	IOLoadFileError:             "Failed to load file",
	PrjConfigInvalid:            "Invalid project configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
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
