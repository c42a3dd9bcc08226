package internal

import "fmt"

// scopeID is a handle to a scope stored in an env arena
type scopeID int

const noScope scopeID = -1

type scope struct {
	enclosing scopeID
	values    map[string]interface{}
}

// env is an arena of lexical scopes. Scopes never outlive the block that
// opened them, so the arena behaves as a stack: push opens the innermost
// scope and pop releases it.
type env struct {
	scopes []scope
}

func newEnv() *env {
	e := &env{}
	e.push(noScope)
	return e
}

// global is the handle of the top level scope
func (e *env) global() scopeID {
	return 0
}

func (e *env) push(enclosing scopeID) scopeID {
	e.scopes = append(e.scopes, scope{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	})
	return scopeID(len(e.scopes) - 1)
}

// pop releases id and every scope opened after it
func (e *env) pop(id scopeID) {
	if id <= e.global() || int(id) >= len(e.scopes) {
		return
	}
	e.scopes = e.scopes[:id]
}

func (e *env) get(id scopeID, name *token) (interface{}, error) {
	for id != noScope {
		sc := e.scopes[id]
		if value, ok := sc.values[name.lexeme]; ok {
			return value, nil
		}
		id = sc.enclosing
	}
	return nil, undefinedVar(name)
}

// define never fails, a second definition in the same scope replaces the first
func (e *env) define(id scopeID, name string, value interface{}) {
	e.scopes[id].values[name] = value
}

func (e *env) assign(id scopeID, name *token, value interface{}) error {
	for id != noScope {
		sc := e.scopes[id]
		if _, ok := sc.values[name.lexeme]; ok {
			sc.values[name.lexeme] = value
			return nil
		}
		id = sc.enclosing
	}
	return undefinedVar(name)
}

func undefinedVar(name *token) error {
	return fmt.Errorf("%w '%s'.", errUndefinedVar, name.lexeme)
}
