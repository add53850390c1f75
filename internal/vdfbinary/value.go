// Package vdfbinary parses Valve's binary VDF format.
//
// This is a vendored and modified version of github.com/TimDeve/valve-vdf-binary
// Licensed under MIT.
package vdfbinary

import "strings"

const (
	vdfMarkerMap         byte = 0x00
	vdfMarkerString      byte = 0x01
	vdfMarkerNumber      byte = 0x02
	vdfMarkerEndOfMap    byte = 0x08
	vdfMarkerEndOfString byte = 0x00
)

// VdfMap is a parsed binary VDF map, keyed by lowercase key names.
type VdfMap map[string]vdfValue

// vdfValue wraps one parsed node: a VdfMap, a uint32, or a string.
type vdfValue struct {
	raw any
}

// VdfValue is the contract Parse returns: a map-rooted document queryable
// by key without a type assertion at every call site.
type VdfValue interface {
	GetMap(key string) (VdfMap, bool)
	GetString(key string) (string, bool)
	GetUint(key string) (uint32, bool)
	GetBool(key string) (bool, bool)
	AsString() (string, bool)
}

func (v vdfValue) child(key string) (vdfValue, bool) {
	m, ok := v.raw.(VdfMap)
	if !ok {
		return vdfValue{}, false
	}
	c, ok := m[strings.ToLower(key)]
	return c, ok
}

func (v vdfValue) GetMap(key string) (VdfMap, bool) {
	c, ok := v.child(key)
	if !ok {
		return nil, false
	}
	m, ok := c.raw.(VdfMap)
	return m, ok
}

func (v vdfValue) GetString(key string) (string, bool) {
	c, ok := v.child(key)
	if !ok {
		return "", false
	}
	return c.AsString()
}

func (v vdfValue) GetUint(key string) (uint32, bool) {
	c, ok := v.child(key)
	if !ok {
		return 0, false
	}
	n, ok := c.raw.(uint32)
	return n, ok
}

func (v vdfValue) GetBool(key string) (bool, bool) {
	n, ok := v.GetUint(key)
	if !ok {
		return false, false
	}
	return n != 0, true
}

func (v vdfValue) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}
