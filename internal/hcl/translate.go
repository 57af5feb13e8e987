package hcl

import (
	"github.com/specialistvlad/jointinit/internal/config"
	"github.com/specialistvlad/jointinit/internal/schema"
)

// translateWorld converts the HCL-specific world schema into the agnostic model.
func translateWorld(name string, s *schema.World) *config.World {
	w := &config.World{Name: name}
	for _, m := range s.Models {
		w.Models = append(w.Models, translateModel(m))
	}
	for _, p := range s.Plugins {
		w.Plugins = append(w.Plugins, &config.Plugin{
			Name:     p.Name,
			Filename: p.Filename,
			Body:     p.Body,
			DefRange: p.Body.MissingItemRange(),
		})
	}
	return w
}

func translateModel(s *schema.Model) *config.Model {
	m := &config.Model{Name: s.Name}
	for _, j := range s.Joints {
		joint := &config.Joint{Name: j.Name, Type: j.Type}
		if j.Position != nil {
			joint.Position = *j.Position
		}
		m.Joints = append(m.Joints, joint)
	}
	for _, inc := range s.Includes {
		m.Includes = append(m.Includes, &config.Include{Name: inc.Name, URI: inc.URI})
	}
	return m
}
