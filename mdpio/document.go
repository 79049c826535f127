package mdpio

// document is the top-level YAML shape: a single "mdp:" mapping.
type document struct {
	MDP mdpSection `yaml:"mdp"`
}

type mdpSection struct {
	States  []stateDoc  `yaml:"states"`
	Actions []actionDoc `yaml:"actions"`
}

type stateDoc struct {
	Name           string            `yaml:"name"`
	EnabledActions []enabledActionDoc `yaml:"enabled actions"`
}

type enabledActionDoc struct {
	Name        string          `yaml:"name"`
	Transitions []transitionDoc `yaml:"transitions"`
}

type transitionDoc struct {
	Target      string      `yaml:"target"`
	Probability interface{} `yaml:"probability"`
}

type actionDoc struct {
	Name   string `yaml:"name"`
	Weight int64  `yaml:"weight"`
}
