// Package mdpio imports and exports MDP descriptions as YAML, via
// gopkg.in/yaml.v3. The document shape is a top-level "mdp:" mapping with
// a "states:" sequence (each carrying its enabled actions and their
// transitions) and an "actions:" sequence (each carrying a positive
// integer weight). Transition probabilities accept either a plain decimal
// or an "a/b" rational literal.
package mdpio
