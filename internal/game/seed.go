package game

// Seed types describe catalog content loaded from the server config file.
// Cross-references use names (not database ids) so config files stay
// readable; the storage layer resolves them while seeding.

type NpcSeed struct {
	FullName  string
	HP        int
	Atk       int
	Def       int
	Equipment map[EquipmentType]string
	Decks     []NpcDeckSeed
}

type NpcDeckSeed struct {
	Name  string
	Cards []NpcDeckSeedCard
}

type NpcDeckSeedCard struct {
	CardName string
	Quantity int
}
