// Package compiler turns advancement definition files into built
// advancements.
//
// A definition is a YAML (.yaml, .yml), JSON (.json) or CUE (.cue) document
// describing one advancement:
//
//	id: demo:first_steps
//	parent: minecraft:story/root
//	display:
//	  title: First Steps
//	  description: {text: Walk somewhere, italic: true}
//	  icon: minecraft:grass_block
//	  frame: goal
//	criteria:
//	  - name: walk
//	    trigger: location
//	    conditions:
//	      position: {x: {min: 10}}
//	requirements: [[walk]]
//	rewards: {experience: 10}
//
// LoadFile decodes a file, Validate reports every problem found, and Compile
// validates and builds.
package compiler
