package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/i18n"
)

func TestYen(t *testing.T) {
	require.Equal(t, "¥30,000", Yen(30000, i18n.Ja))
	require.Equal(t, "¥275,000", Yen(275000, i18n.En))
	require.Equal(t, "¥0", Yen(0, i18n.Ja))
	require.Equal(t, "-¥1,200", Yen(-1200, i18n.Ja))
}

func TestDate(t *testing.T) {
	d := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2025/3/18", Date(d, i18n.Ja))
	require.Equal(t, "3/18/2025", Date(d, i18n.En))
	require.Equal(t, "", Date(time.Time{}, i18n.En))
	require.Equal(t, "2025-03-18", ISODate(d))
}

func TestTemplate(t *testing.T) {
	require.Equal(t, "3 min read", Template("%d min read", 3))
	require.Equal(t, "約3分", Template("約%d分", 3))
	require.Equal(t, "quick read", Template("quick read", 3))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "40%", Percent(40, i18n.En))
}
