package types

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// cvHeaderKeys is the canonical header order used when a model was built
// programmatically and carries no source key order.
var cvHeaderKeys = []string{
	"name", "location", "email", "phone", "website", "photo", "social_networks",
}

// MarshalYAML serializes the CV back into its source shape: header keys in
// the remembered order, then sections as a mapping of raw keys to entry
// lists. Reading the result back yields an equal model.
func (c CV) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value any) error {
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return fmt.Errorf("marshaling cv.%s: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, valNode)
		return nil
	}

	keys := c.KeyOrder
	if len(keys) == 0 {
		keys = cvHeaderKeys
	}
	for _, key := range keys {
		var value any
		switch key {
		case "name":
			value = c.Name
		case "location":
			value = c.Location
		case "email":
			value = c.Email
		case "photo":
			value = c.Photo
		case "phone":
			value = c.Phone
		case "website":
			value = c.Website
		case "social_networks":
			if len(c.SocialNetworks) > 0 {
				value = c.SocialNetworks
			}
		}
		if value == nil || value == "" {
			continue
		}
		if err := add(key, value); err != nil {
			return nil, err
		}
	}

	if len(c.Sections) == 0 {
		return root, nil
	}
	sections := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range c.Sections {
		name := section.Name
		if name == "" {
			name = SnakeCaseTitle(section.Title)
		}
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, entry := range section.Entries {
			node, err := entryNode(entry)
			if err != nil {
				return nil, err
			}
			list.Content = append(list.Content, node)
		}
		sections.Content = append(sections.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name}, list)
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "sections"}, sections)
	return root, nil
}

// entryNode marshals an entry in declared field order, tags and unknown
// fields last. A text entry carrying nothing but content collapses back to
// a plain string.
func entryNode(entry Entry) (*yaml.Node, error) {
	if text, ok := entry.(*TextEntry); ok && len(text.Tags) == 0 && len(text.Extra) == 0 {
		node := &yaml.Node{}
		if err := node.Encode(text.Content); err != nil {
			return nil, err
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value any) error {
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return fmt.Errorf("marshaling entry field %s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, valNode)
		return nil
	}

	fields := entry.FieldMap()
	for _, name := range entryFieldNames[entry.Kind()] {
		if name == "tags" {
			continue
		}
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := add(name, value); err != nil {
			return nil, err
		}
		delete(fields, name)
	}
	if tags := entry.EntryTags(); len(tags) > 0 {
		if err := add("tags", tags); err != nil {
			return nil, err
		}
	}

	extras := make([]string, 0, len(fields))
	for name := range fields {
		extras = append(extras, name)
	}
	sort.Strings(extras)
	for _, name := range extras {
		if err := add(name, fields[name]); err != nil {
			return nil, err
		}
	}
	return node, nil
}
