package hcl

import (
	"fmt"

	"github.com/vk/workflowc/internal/config"
)

// translateOverride converts an override block into the agnostic model.
func translateOverride(b *overrideBlock) (*config.Override, error) {
	value, err := exprToNative(b.Value)
	if err != nil {
		return nil, fmt.Errorf("override %q: %w", b.ClassType, err)
	}
	return &config.Override{
		ClassType: b.ClassType,
		Input:     b.Input,
		Value:     value,
	}, nil
}

// translateNode converts a node block into the agnostic model, checking that
// each nested link names exactly one producer.
func translateNode(b *nodeBlock) (*config.NodeSpec, error) {
	inputsVal, err := exprToNative(b.Inputs)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", b.Name, err)
	}
	inputs := map[string]any{}
	if inputsVal != nil {
		m, ok := inputsVal.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("node %q: inputs must be an object, got %T", b.Name, inputsVal)
		}
		inputs = m
	}

	spec := &config.NodeSpec{
		Name:      b.Name,
		ClassType: b.ClassType,
		Inputs:    inputs,
	}
	for _, lb := range b.Links {
		if (lb.From == "") == (lb.FromClass == "") {
			return nil, fmt.Errorf("node %q link %q: exactly one of from and from_class must be set", b.Name, lb.Input)
		}
		spec.Links = append(spec.Links, &config.NodeLink{
			Input:     lb.Input,
			From:      lb.From,
			FromClass: lb.FromClass,
			Slot:      lb.Slot,
		})
	}
	return spec, nil
}

// translateSet converts a set block into the agnostic model.
func translateSet(b *setBlock) (*config.SetSpec, error) {
	value, err := exprToNative(b.Value)
	if err != nil {
		return nil, fmt.Errorf("set %q: %w", b.Node, err)
	}
	return &config.SetSpec{
		Node:  b.Node,
		Input: b.Input,
		Value: value,
	}, nil
}
