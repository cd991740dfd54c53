package portfolio_test

import (
	"testing"

	"github.com/leighmacdonald/folio/internal/portfolio"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	feed := portfolio.NewFeed()

	var first, second []int
	releaseFirst := feed.Subscribe(func(scrollY int) { first = append(first, scrollY) })
	releaseSecond := feed.Subscribe(func(scrollY int) { second = append(second, scrollY) })
	require.Equal(t, 2, feed.Len())

	feed.Emit(10)
	releaseFirst()
	releaseFirst()
	feed.Emit(20)
	releaseSecond()
	feed.Emit(30)

	require.Equal(t, []int{10}, first)
	require.Equal(t, []int{10, 20}, second)
	require.Equal(t, 0, feed.Len())
}
