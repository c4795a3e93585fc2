package manabench

// SimulateHand draws handSize cards from the deck and tallies how many were
// lands and, of those, how many produce the needed color. Pure accumulation;
// the keep-or-mulligan decision lives in MulliganPolicy.
func SimulateHand(deck *Deck, handSize int) (lands, goodLands int, err error) {
	for i := 0; i < handSize; i++ {
		card, err := deck.Draw()
		if err != nil {
			return 0, 0, err
		}
		if card == GoodLand || card == OtherLand {
			lands++
		}
		if card == GoodLand {
			goodLands++
		}
	}
	return lands, goodLands, nil
}

// SimulateGame plays one game up to the point the spell would be cast and
// returns the land tallies the player has seen by then.
//
// The mulligan loop walks hand sizes 7, 6, 5, 4. Every attempt starts from a
// freshly reset deck: a rejected hand is shuffled back in, its cards do not
// carry over. If no hand is ever kept the trial ends on a forced 4-card keep.
// After the kept hand, the player draws turnAllowed-1 more cards, plus one
// when on the draw.
func SimulateGame(deck *Deck, cfg Config, policy MulliganPolicy) (lands, goodLands int, err error) {
	// The candidate source count under test is whatever the fresh deck was
	// built with; remember it so every reset restores the same scenario.
	initialGood := deck.GoodLands()

	handSize := 7
	kept := false

	for handSize >= 4 && !kept {
		deck.Reset(cfg.TotalLands, initialGood, cfg.DeckSize)
		lands, goodLands, err = SimulateHand(deck, handSize)
		if err != nil {
			return 0, 0, err
		}

		keep, err := policy.ShouldKeep(handSize, lands)
		if err != nil {
			return 0, 0, err
		}
		if keep {
			kept = true
		} else {
			handSize--
		}
	}

	// Mulliganed below 4: the 4-card hand is kept unconditionally.
	if !kept {
		deck.Reset(cfg.TotalLands, initialGood, cfg.DeckSize)
		lands, goodLands, err = SimulateHand(deck, 4)
		if err != nil {
			return 0, 0, err
		}
	}

	additionalDraws := cfg.TurnAllowed - 1
	if !cfg.OnPlay {
		additionalDraws++
	}

	for i := 0; i < additionalDraws; i++ {
		card, err := deck.Draw()
		if err != nil {
			return 0, 0, err
		}
		if card == GoodLand || card == OtherLand {
			lands++
		}
		if card == GoodLand {
			goodLands++
		}
	}

	return lands, goodLands, nil
}
