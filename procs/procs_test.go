package procs

import (
	"testing"
)

type countdown int

func (c countdown) Run(counter *int) (Proc[*int], error) {
	*counter++
	if c == 0 {
		return nil, nil
	}
	return c - 1, nil
}

func TestProcTrampoline(t *testing.T) {
	var counter int
	var proc Proc[*int] = countdown(2)
	for proc != nil {
		var err error
		proc, err = proc.Run(&counter)
		if err != nil {
			t.Fatal(err)
		}
	}
	if counter != 3 {
		t.Fatalf("got %d", counter)
	}
}

func TestProcsSequence(t *testing.T) {
	var counter int
	var proc Proc[*int] = Procs[*int]{
		countdown(0),
		countdown(1),
	}
	for proc != nil {
		var err error
		proc, err = proc.Run(&counter)
		if err != nil {
			t.Fatal(err)
		}
	}
	if counter != 3 {
		t.Fatalf("got %d", counter)
	}
}
