package facts

import "fmt"

// Keeper records what every generated declaration name refers to. Names are
// unique within a generated file.
type Keeper map[string]Fact

func NewKeeper() Keeper {
	return make(Keeper)
}

func (fm Keeper) AddFact(entry Entry) error {
	if entry.Fact == None {
		return fmt.Errorf("invalid fact kind: %s", entry.Fact.String())
	}
	if entry.Fact > maximumFactValue {
		return fmt.Errorf("unknown fact: %d", entry.Fact)
	}
	if entry.Name == "" {
		return fmt.Errorf("empty fact name")
	}

	if existing, ok := fm[entry.Name]; ok {
		return fmt.Errorf("%s already declared as %s", entry.Name, existing)
	}

	fm[entry.Name] = entry.Fact
	return nil
}

func (fm Keeper) GetFact(name string) Fact {
	return fm[name]
}
