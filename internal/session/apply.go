package session

import (
	"strings"

	"nyxventure/internal/node"
	"nyxventure/internal/story"
	"nyxventure/pkg/types"
)

// Apply performs one edit and returns the events it fired. Handlers validate
// before mutating, so a failed op leaves the model untouched.
func (s *Session) Apply(op types.Op) (types.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(op)
}

// ApplyAll applies ops in order and stops at the first failure, returning the
// results so far and an *OpError carrying the failing index.
func (s *Session) ApplyAll(ops []types.Op) ([]types.OpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]types.OpResult, 0, len(ops))
	for i, op := range ops {
		res, err := s.apply(op)
		if err != nil {
			return results, &OpError{Index: i, Op: op.Op, Err: err}
		}
		results = append(results, res)
	}
	return results, nil
}

type handler func(s *Session, op types.Op, res *types.OpResult) error

var handlers = map[string]handler{
	"set":     (*Session).opSet,
	"new":     (*Session).opNew,
	"create":  (*Session).opCreate,
	"add":     (*Session).opAdd,
	"own":     (*Session).opOwn,
	"remove":  (*Session).opRemove,
	"score":   (*Session).opScore,
	"unscore": (*Session).opUnscore,
	"place":   (*Session).opPlace,
	"take":    (*Session).opTake,
	"link":    (*Session).opLink,
	"use":     (*Session).opUse,
	"clear":   (*Session).opClear,
}

func (s *Session) apply(op types.Op) (types.OpResult, error) {
	name := strings.ToLower(strings.TrimSpace(op.Op))
	h, ok := handlers[name]
	if !ok {
		return types.OpResult{}, unknownOpError{op: op.Op}
	}
	s.pending = nil
	res := types.OpResult{Op: name}
	err := h(s, op, &res)
	res.Events = s.pending
	if res.Events == nil {
		res.Events = []types.Event{}
	}
	res.Changed = len(res.Events) > 0
	s.pending = nil
	if err != nil {
		s.log.Debug().Str("op", name).Str("target", op.Target).Err(err).Msg("op rejected")
		return res, err
	}
	s.log.Debug().Str("op", name).Str("target", op.Target).Int("events", len(res.Events)).Msg("op applied")
	return res, nil
}

func (s *Session) opSet(op types.Op, _ *types.OpResult) error {
	e, err := s.resolve(op.Target)
	if err != nil {
		return err
	}
	if op.Property == "" {
		return invalidOpError{op: "set", msg: "property is required"}
	}
	return e.SetField(op.Property, op.Value)
}

func (s *Session) opNew(op types.Op, res *types.OpResult) error {
	if op.As != "" {
		if _, taken := s.aliases[op.As]; taken {
			return aliasTakenError{alias: op.As}
		}
	}
	e, err := story.New(story.Kind(op.Kind))
	if err != nil {
		return err
	}
	s.index(e)
	_ = s.setAlias(e, op.As)
	res.Node, res.Alias = e.ID().String(), op.As
	return nil
}

func (s *Session) opCreate(op types.Op, res *types.OpResult) error {
	c, err := s.container(op)
	if err != nil {
		return err
	}
	if op.As != "" {
		if _, taken := s.aliases[op.As]; taken {
			return aliasTakenError{alias: op.As}
		}
	}
	e, err := c.Create(op.Slot)
	if err != nil {
		return err
	}
	s.index(e)
	_ = s.setAlias(e, op.As)
	res.Node, res.Alias = e.ID().String(), op.As
	return nil
}

func (s *Session) opAdd(op types.Op, _ *types.OpResult) error {
	c, ref, err := s.containerAndRef(op)
	if err != nil {
		return err
	}
	return c.Add(op.Slot, ref)
}

func (s *Session) opOwn(op types.Op, _ *types.OpResult) error {
	c, ref, err := s.containerAndRef(op)
	if err != nil {
		return err
	}
	return c.Own(op.Slot, ref)
}

func (s *Session) opRemove(op types.Op, _ *types.OpResult) error {
	c, ref, err := s.containerAndRef(op)
	if err != nil {
		return err
	}
	_, err = c.Remove(op.Slot, ref)
	return err
}

func (s *Session) opScore(op types.Op, _ *types.OpResult) error {
	ct, ref, err := targetAndRef[*story.CharacterType](s, op, story.KindCharacterType)
	if err != nil {
		return err
	}
	return ct.SetBasePoints(ref, op.Value)
}

func (s *Session) opUnscore(op types.Op, _ *types.OpResult) error {
	ct, ref, err := targetAndRef[*story.CharacterType](s, op, story.KindCharacterType)
	if err != nil {
		return err
	}
	_, err = ct.RemoveBasePoints(ref)
	return err
}

func (s *Session) opPlace(op types.Op, _ *types.OpResult) error {
	c, a, err := s.chapterAndArtifact(op)
	if err != nil {
		return err
	}
	c.PlaceArtifact(a)
	return nil
}

func (s *Session) opTake(op types.Op, _ *types.OpResult) error {
	c, a, err := s.chapterAndArtifact(op)
	if err != nil {
		return err
	}
	c.TakeArtifact(a)
	return nil
}

func (s *Session) opLink(op types.Op, _ *types.OpResult) error {
	l, err := target[*story.Link](s, op, story.KindLink)
	if err != nil {
		return err
	}
	var ref story.Entity
	if op.Ref != "" {
		if ref, err = s.resolve(op.Ref); err != nil {
			return err
		}
	}
	switch strings.ToLower(op.Property) {
	case "target":
		c, ok := ref.(*story.Chapter)
		if ref != nil && !ok {
			return invalidOpError{op: "link", msg: "target must be a chapter, got " + string(ref.Kind())}
		}
		l.SetTarget(c)
	case "artifact":
		a, ok := ref.(*story.Artifact)
		if ref != nil && !ok {
			return invalidOpError{op: "link", msg: "artifact must be an artifact, got " + string(ref.Kind())}
		}
		l.SetRequiredArtifact(a)
	default:
		return invalidOpError{op: "link", msg: "property must be target or artifact"}
	}
	return nil
}

func (s *Session) opUse(op types.Op, res *types.OpResult) error {
	l, err := target[*story.Link](s, op, story.KindLink)
	if err != nil {
		return err
	}
	c, ok := l.Follow()
	if !ok {
		return invalidOpError{op: "use", msg: "link is not usable"}
	}
	if c != nil {
		res.Node = c.ID().String()
		res.Alias = s.aliasOf[c.ID()]
	}
	return nil
}

func (s *Session) opClear(op types.Op, _ *types.OpResult) error {
	var e story.Entity = s.game
	if op.Target != "" {
		var err error
		if e, err = s.resolve(op.Target); err != nil {
			return err
		}
	}
	node.ClearAll(e)
	return nil
}

func (s *Session) container(op types.Op) (story.Container, error) {
	e, err := s.resolve(op.Target)
	if err != nil {
		return nil, err
	}
	c, ok := e.(story.Container)
	if !ok {
		return nil, invalidOpError{op: op.Op, msg: string(e.Kind()) + " has no slots"}
	}
	return c, nil
}

func (s *Session) containerAndRef(op types.Op) (story.Container, story.Entity, error) {
	c, err := s.container(op)
	if err != nil {
		return nil, nil, err
	}
	ref, err := s.resolve(op.Ref)
	if err != nil {
		return nil, nil, err
	}
	return c, ref, nil
}

func (s *Session) chapterAndArtifact(op types.Op) (*story.Chapter, *story.Artifact, error) {
	c, ref, err := targetAndRef[*story.Chapter](s, op, story.KindChapter)
	if err != nil {
		return nil, nil, err
	}
	a, ok := ref.(*story.Artifact)
	if !ok {
		return nil, nil, invalidOpError{op: op.Op, msg: "ref must be an artifact, got " + string(ref.Kind())}
	}
	return c, a, nil
}

func target[T story.Entity](s *Session, op types.Op, want story.Kind) (T, error) {
	var zero T
	e, err := s.resolve(op.Target)
	if err != nil {
		return zero, err
	}
	v, ok := e.(T)
	if !ok {
		return zero, invalidOpError{op: op.Op, msg: "target must be a " + string(want) + ", got " + string(e.Kind())}
	}
	return v, nil
}

func targetAndRef[T story.Entity](s *Session, op types.Op, want story.Kind) (T, story.Entity, error) {
	v, err := target[T](s, op, want)
	if err != nil {
		return v, nil, err
	}
	ref, err := s.resolve(op.Ref)
	if err != nil {
		return v, nil, err
	}
	return v, ref, nil
}
