package storage

// memberRows builds chat_users rows (chat_id, user_id) for pgx.CopyFromRows,
// owner goes first and duplicates are removed
func memberRows(chatID, ownerID int64, userIDs []int64) [][]interface{} {
	seen := map[int64]struct{}{ownerID: {}}
	rows := [][]interface{}{{chatID, ownerID}}
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, []interface{}{chatID, id})
	}
	return rows
}
