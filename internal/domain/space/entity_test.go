//go:build unit

package space_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/errs"
	"amenity-booking/internal/pkg/patch"
	"amenity-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SpaceBuilder)
	errIs  error
}

func TestCommonSpace(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Party Room", actual.Name())
		assert.Equal(t, space.CategorySocialHall, actual.Category())
		assert.Equal(t, int32(40), actual.Capacity())
		assert.Equal(t, space.TimeUnitHour, actual.TimeUnit())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.ApprovalRequired())
		require.NotNil(t, actual.PricePerUnit())
		assert.Equal(t, int64(50000), *actual.PricePerUnit())
	})

	t.Run("デフォルト値", func(t *testing.T) {
		actual, err := builder.NewSpaceBuilder().With(func(b *builder.SpaceBuilder) {
			b.Active = nil
			b.ApprovalRequired = nil
		}).BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.IsActive(), "active defaults to true")
		assert.True(t, actual.ApprovalRequired(), "approval defaults to true")
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "前後空白はトリム", mutate: func(b *builder.SpaceBuilder) { b.Name = "  Gym  " }},
			{name: "空の名前NG", mutate: func(b *builder.SpaceBuilder) { b.Name = "   " }, errIs: space.ErrEmptyName},
			{name: "255文字OK", mutate: func(b *builder.SpaceBuilder) { b.Name = strings.Repeat("a", 255) }},
			{name: "256文字NG", mutate: func(b *builder.SpaceBuilder) { b.Name = strings.Repeat("a", 256) }, errIs: space.ErrNameTooLong},
		})
	})

	t.Run("容量検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "容量1OK", mutate: func(b *builder.SpaceBuilder) { b.Capacity = 1 }},
			{name: "容量0NG", mutate: func(b *builder.SpaceBuilder) { b.Capacity = 0 }, errIs: space.ErrInvalidCapacity},
			{name: "負の容量NG", mutate: func(b *builder.SpaceBuilder) { b.Capacity = -3 }, errIs: space.ErrInvalidCapacity},
		})
	})

	t.Run("料金検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "料金0OK", mutate: func(b *builder.SpaceBuilder) { b.WithPrice(0) }},
			{name: "料金なしOK", mutate: func(b *builder.SpaceBuilder) { b.WithoutPrice() }},
			{name: "負の料金NG", mutate: func(b *builder.SpaceBuilder) { b.WithPrice(-1) }, errIs: space.ErrNegativePrice},
		})
	})

	t.Run("区分・単位検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "全カテゴリOK", mutate: func(b *builder.SpaceBuilder) { b.Category = space.CategoryBBQZone }},
			{name: "未知のカテゴリNG", mutate: func(b *builder.SpaceBuilder) { b.Category = "spa" }, errIs: space.ErrInvalidCategory},
			{name: "月単位OK", mutate: func(b *builder.SpaceBuilder) { b.TimeUnit = space.TimeUnitMonth }},
			{name: "未知の単位NG", mutate: func(b *builder.SpaceBuilder) { b.TimeUnit = "week" }, errIs: space.ErrInvalidTimeUnit},
		})
	})
}

func TestCommonSpace_Apply(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("指定フィールドのみ更新", func(t *testing.T) {
		s, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)
		before := *s

		capacity := int32(12)
		err = s.Apply(space.Patch{Capacity: &capacity}, now)
		require.NoError(t, err)

		assert.Equal(t, int32(12), s.Capacity())
		assert.Equal(t, before.Name(), s.Name())
		assert.Equal(t, before.PricePerUnit(), s.PricePerUnit())
		assert.Equal(t, now, s.UpdatedAt())
	})

	t.Run("nullで料金をクリア", func(t *testing.T) {
		s, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.Apply(space.Patch{PricePerUnit: patch.Null[int64]()}, now))
		assert.Nil(t, s.PricePerUnit())
	})

	t.Run("不正な値は元の状態を保持", func(t *testing.T) {
		s, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)

		name := "Renamed"
		capacity := int32(0)
		err = s.Apply(space.Patch{Name: &name, Capacity: &capacity}, now)
		require.ErrorIs(t, err, space.ErrInvalidCapacity)
		assert.True(t, errs.IsKind(err, errs.KindBadRequest))

		assert.Equal(t, "Party Room", s.Name())
		assert.Equal(t, int32(40), s.Capacity())
	})

	t.Run("負の料金NG", func(t *testing.T) {
		s, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Apply(space.Patch{PricePerUnit: patch.Value(int64(-10))}, now)
		require.ErrorIs(t, err, space.ErrNegativePrice)
	})

	t.Run("非アクティブ化", func(t *testing.T) {
		s, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, s.EnsureBookable())

		inactive := false
		require.NoError(t, s.Apply(space.Patch{Active: &inactive}, now))
		require.ErrorIs(t, s.EnsureBookable(), space.ErrInactive)
	})
}

func TestTimeUnit_Length(t *testing.T) {
	assert.Equal(t, time.Hour, space.TimeUnitHour.Length())
	assert.Equal(t, 24*time.Hour, space.TimeUnitDay.Length())
	assert.Equal(t, 720*time.Hour, space.TimeUnitMonth.Length())
	assert.Equal(t, time.Duration(0), space.TimeUnit("week").Length())
}

func TestSchedule(t *testing.T) {
	t.Run("envelope round trip", func(t *testing.T) {
		rules := json.RawMessage(`[{"day":"mon","from":"09:00","to":"21:00"}]`)
		s, err := space.NewSchedule(space.CurrentScheduleVersion, rules)
		require.NoError(t, err)

		raw, err := json.Marshal(s)
		require.NoError(t, err)

		parsed, err := space.ParseSchedule(raw)
		require.NoError(t, err)
		assert.Equal(t, 1, parsed.Version())
		if diff := cmp.Diff(string(rules), string(parsed.Rules())); diff != "" {
			t.Errorf("rules mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty payload means no schedule", func(t *testing.T) {
		parsed, err := space.ParseSchedule(nil)
		require.NoError(t, err)
		assert.Nil(t, parsed)
	})

	t.Run("invalid payloads", func(t *testing.T) {
		_, err := space.NewSchedule(0, json.RawMessage(`{}`))
		require.ErrorIs(t, err, space.ErrInvalidSchedule)

		_, err = space.NewSchedule(1, json.RawMessage(`{broken`))
		require.ErrorIs(t, err, space.ErrInvalidSchedule)

		_, err = space.ParseSchedule([]byte(`"just a string"`))
		require.ErrorIs(t, err, space.ErrInvalidSchedule)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSpaceBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
