package config

// Default returns a fresh copy of the built-in settings.
func Default() Config {
	return Config{
		White: SideConfig{Evaluator: "mobility", Depth: 2, Width: 6},
		Black: SideConfig{Evaluator: "mobility", Depth: 2, Width: 6},
		Search: SearchConfig{
			EvalCacheEntries: 1 << 16,
			Triggers: []TriggerConfig{
				{Kind: "pieces_below", Threshold: 16, Width: 2},
				{Kind: "pieces_below", Threshold: 8, Depth: 1, Width: 2},
				{Kind: "fullmove_above", Threshold: 60, Depth: 1},
			},
		},
		Game: GameConfig{
			P:                  0.8,
			MaxMoves:           100,
			StalemateThreshold: 20,
			StopThreshold:      2000,
		},
	}
}
