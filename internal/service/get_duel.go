package service

// GetDuel loads a duel and returns it sanitized for the viewer.
func GetDuel(repo DuelRepo, duelID string, viewerUserID uint) (*DuelView, error) {
	d, err := repo.GetDuelByPublicID(duelID)
	if err != nil {
		return nil, err
	}
	return SanitizeForViewer(d, viewerUserID), nil
}
