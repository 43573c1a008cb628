package storage

import (
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"
)

func TestMemberRows(t *testing.T) {
	rows := memberRows(7, 1, []int64{2, 1, 3, 2})
	require.Equal(t, [][]interface{}{{int64(7), int64(1)}, {int64(7), int64(2)}, {int64(7), int64(3)}}, rows)
}

func TestMemberRowsOwnerOnly(t *testing.T) {
	rows := memberRows(7, 1, nil)
	require.Equal(t, [][]interface{}{{int64(7), int64(1)}}, rows)
}

func TestMemberRowsCopySource(t *testing.T) {
	src := pgx.CopyFromRows(memberRows(1, 2, []int64{3}))

	var values [][]interface{}
	for src.Next() {
		v, err := src.Values()
		require.NoError(t, err)
		values = append(values, v)
	}

	require.NoError(t, src.Err())
	require.Equal(t, [][]interface{}{{int64(1), int64(2)}, {int64(1), int64(3)}}, values)
}
