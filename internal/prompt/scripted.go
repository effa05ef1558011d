package prompt

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Scripted replays canned answers in order. An empty answer accepts the
// prompt's default, like pressing enter on a terminal.
type Scripted struct {
	mu      sync.Mutex
	answers []string
	asked   []string
}

// NewScripted returns a driver that answers with the given values.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) next(message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", fmt.Errorf("prompt: no scripted answer for %q", message)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (s *Scripted) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer, err := s.next(cfg.Message)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return cfg.Default, nil
	}
	return strconv.ParseBool(answer)
}

// Asked returns the prompt messages seen so far.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}
