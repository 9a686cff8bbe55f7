package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fizennn/Seejam-Server/internal/game"
)

type cardEntry struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Type   string `json:"type"`
	Energy int    `json:"energy"`
	Effect struct {
		Action string `json:"action"`
		Value  int    `json:"value"`
		Target string `json:"target"`
	} `json:"effect"`
}

type equipmentEntry struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rarity   string `json:"rarity"`
	LevelReq int    `json:"level_req"`
	Atk      int    `json:"atk"`
	Def      int    `json:"def"`
	HP       int    `json:"hp"`
}

type npcEntry struct {
	FullName  string            `json:"full_name"`
	HP        int               `json:"hp"`
	Atk       int               `json:"atk"`
	Def       int               `json:"def"`
	Equipment map[string]string `json:"equipment"`
	Decks     []struct {
		Name  string `json:"name"`
		Cards []struct {
			Card     string `json:"card"`
			Quantity int    `json:"quantity"`
		} `json:"cards"`
	} `json:"decks"`
}

type rawConfig struct {
	CardList      []cardEntry      `json:"card_list"`
	EquipmentList []equipmentEntry `json:"equipment_list"`
	NpcList       []npcEntry       `json:"npc_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains catalog seed data and the server address to bind to.
type LoadedConfig struct {
	Cards         []game.Card
	Equipment     []game.Equipment
	Npcs          []game.NpcSeed
	ServerAddress string
}

var validActions = map[string]game.CardAction{
	"damage":      game.ActionDamage,
	"increaseAtk": game.ActionIncreaseAtk,
	"increaseDef": game.ActionIncreaseDef,
}

var validTargets = map[string]game.CardTarget{
	"self":  game.TargetSelf,
	"enemy": game.TargetEnemy,
}

var validCardTypes = map[string]game.CardType{
	"skill": game.CardTypeSkill,
	"buff":  game.CardTypeBuff,
}

var validSlots = map[string]game.EquipmentType{
	"weapon":   game.SlotWeapon,
	"armor":    game.SlotArmor,
	"helmet":   game.SlotHelmet,
	"boots":    game.SlotBoots,
	"necklace": game.SlotNecklace,
	"ring":     game.SlotRing,
}

func parseRarity(s string) game.Rarity {
	if s == "" {
		return game.RarityCommon
	}
	return game.Rarity(s)
}

// LoadConfig reads the configuration file at path and returns catalog seed
// data and the server address. It requires the key `card_list`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide a 'card_list' array)", path)
	}

	out := &LoadedConfig{ServerAddress: ":8080"}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}

	cardNames := make(map[string]struct{}, len(rc.CardList))
	for _, c := range rc.CardList {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
		}
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, exists := cardNames[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card name '%s'", path, c.Name)
		}
		cardNames[key] = struct{}{}
		if c.Energy < 1 {
			return nil, fmt.Errorf("config file %s: card '%s' needs an energy cost of at least 1", path, c.Name)
		}
		ctype, ok := validCardTypes[c.Type]
		if !ok {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown type '%s'", path, c.Name, c.Type)
		}
		action, ok := validActions[c.Effect.Action]
		if !ok {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown effect action '%s'", path, c.Name, c.Effect.Action)
		}
		target, ok := validTargets[c.Effect.Target]
		if !ok {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown effect target '%s'", path, c.Name, c.Effect.Target)
		}
		out.Cards = append(out.Cards, game.Card{
			Name:   c.Name,
			Rarity: parseRarity(c.Rarity),
			Type:   ctype,
			Energy: c.Energy,
			Effect: game.CardEffect{Action: action, Value: c.Effect.Value, Target: target},
		})
	}

	equipNames := make(map[string]struct{}, len(rc.EquipmentList))
	for _, e := range rc.EquipmentList {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("config file %s: equipment entry missing 'name'", path)
		}
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := equipNames[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate equipment name '%s'", path, e.Name)
		}
		equipNames[key] = struct{}{}
		slot, ok := validSlots[e.Type]
		if !ok {
			return nil, fmt.Errorf("config file %s: equipment '%s' has unknown type '%s'", path, e.Name, e.Type)
		}
		out.Equipment = append(out.Equipment, game.Equipment{
			Name:     e.Name,
			Type:     slot,
			Rarity:   parseRarity(e.Rarity),
			LevelReq: e.LevelReq,
			Atk:      e.Atk,
			Def:      e.Def,
			HP:       e.HP,
		})
	}

	for _, n := range rc.NpcList {
		if strings.TrimSpace(n.FullName) == "" {
			return nil, fmt.Errorf("config file %s: npc entry missing 'full_name'", path)
		}
		if len(n.Decks) == 0 {
			return nil, fmt.Errorf("config file %s: npc '%s' needs at least one deck", path, n.FullName)
		}
		seed := game.NpcSeed{FullName: n.FullName, HP: n.HP, Atk: n.Atk, Def: n.Def}
		if len(n.Equipment) > 0 {
			seed.Equipment = make(map[game.EquipmentType]string, len(n.Equipment))
			for slotName, itemName := range n.Equipment {
				slot, ok := validSlots[slotName]
				if !ok {
					return nil, fmt.Errorf("config file %s: npc '%s' has unknown equipment slot '%s'", path, n.FullName, slotName)
				}
				if _, exists := equipNames[strings.ToLower(itemName)]; !exists {
					return nil, fmt.Errorf("config file %s: npc '%s' references unknown equipment '%s'", path, n.FullName, itemName)
				}
				seed.Equipment[slot] = itemName
			}
		}
		for _, d := range n.Decks {
			deck := game.NpcDeckSeed{Name: d.Name}
			if len(d.Cards) == 0 {
				return nil, fmt.Errorf("config file %s: npc '%s' deck '%s' has no cards", path, n.FullName, d.Name)
			}
			for _, dc := range d.Cards {
				if _, exists := cardNames[strings.ToLower(dc.Card)]; !exists {
					return nil, fmt.Errorf("config file %s: npc '%s' references unknown card '%s'", path, n.FullName, dc.Card)
				}
				q := dc.Quantity
				if q < 1 {
					q = 1
				}
				deck.Cards = append(deck.Cards, game.NpcDeckSeedCard{CardName: dc.Card, Quantity: q})
			}
			seed.Decks = append(seed.Decks, deck)
		}
		out.Npcs = append(out.Npcs, seed)
	}

	return out, nil
}
