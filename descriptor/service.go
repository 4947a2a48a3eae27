// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

// Service and Method are used only at the boundary to the (out-of-scope)
// RPC layer; the codec treats Method.Input/Output as ordinary Messages.
type Service struct {
	name    Name
	parent  Descriptor
	methods []*Method
	byName  map[Name]*Method
}

func NewService(name Name, parent Descriptor) *Service {
	return &Service{name: name, parent: parent, byName: make(map[Name]*Method)}
}

func (s *Service) Name() Name         { return s.name }
func (s *Service) FullName() FullName { return fullName(s.parent, s.name) }
func (s *Service) Parent() Descriptor { return s.parent }
func (s *Service) Methods() []*Method { return s.methods }

// AddMethod appends a Method to the Service, returning a *DuplicateNameError
// if the name is already used by a sibling method.
func (s *Service) AddMethod(name Name, index int, input, output *Message, clientStreaming, serverStreaming bool) (*Method, error) {
	if _, dup := s.byName[name]; dup {
		return nil, &DuplicateNameError{FullName: fullName(s, name)}
	}
	m := &Method{
		name:            name,
		parent:          s,
		index:           index,
		input:           input,
		output:          output,
		clientStreaming: clientStreaming,
		serverStreaming: serverStreaming,
	}
	s.methods = append(s.methods, m)
	s.byName[name] = m
	return m, nil
}

// Method identifies one RPC: its input/output Message types and whether
// either side streams. The codec treats Input()/Output() as ordinary
// Messages; only the RPC transport (out of scope) interprets streaming.
type Method struct {
	name            Name
	parent          *Service
	index           int
	input, output   *Message
	clientStreaming bool
	serverStreaming bool
}

func (m *Method) Name() Name         { return m.name }
func (m *Method) FullName() FullName { return fullName(m.parent, m.name) }
func (m *Method) Parent() Descriptor { return m.parent }
func (m *Method) Index() int         { return m.index }
func (m *Method) Input() *Message    { return m.input }
func (m *Method) Output() *Message   { return m.output }
func (m *Method) IsClientStreaming() bool { return m.clientStreaming }
func (m *Method) IsServerStreaming() bool { return m.serverStreaming }
