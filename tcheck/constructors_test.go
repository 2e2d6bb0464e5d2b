package tcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/tcheck"
)

func TestBasicUUID(t *testing.T) {
	suite := tcheck.Suite{"ID": tcheck.BasicUUID()}
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	require.NoError(t, err)
	id := checkers["ID"]

	require.True(t, id.Test("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	require.False(t, id.Test("not-a-uuid"))
	require.False(t, id.Test(42))
}

func TestTuple_MisplacedRest(t *testing.T) {
	_, err := tcheck.Tuple(tcheck.Rest(tcheck.Number), tcheck.String)
	require.Error(t, err)
	require.ErrorIs(t, err, tcheck.ErrMisplacedRest)
}

func TestCreateCheckers_CollidingPropertyNames(t *testing.T) {
	suite := tcheck.Suite{
		"Dup": tcheck.Iface("Dup", nil, []tcheck.Prop{
			tcheck.Field("userId", tcheck.String, false),
			tcheck.Field("userid", tcheck.String, false),
		}, nil),
	}
	_, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	require.ErrorIs(t, err, tcheck.ErrCollidingPropertyNames)
}

func TestCreateCheckers_FullWidthCollision(t *testing.T) {
	suite := tcheck.Suite{
		"Dup": tcheck.Iface("Dup", nil, []tcheck.Prop{
			tcheck.Field("user", tcheck.String, false),
			tcheck.Field("ｕｓｅｒ", tcheck.String, false),
		}, nil),
	}
	_, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	require.ErrorIs(t, err, tcheck.ErrCollidingPropertyNames)
}

func TestSuite_Stamp_Unique(t *testing.T) {
	s := personSuite()
	require.NotEqual(t, s.Stamp(), s.Stamp())
}

func TestSuite_Names_Sorted(t *testing.T) {
	suite := tcheck.Suite{"Zeta": tcheck.String, "Alpha": tcheck.Number}
	require.Equal(t, []string{"Alpha", "Zeta"}, suite.Names())
}
