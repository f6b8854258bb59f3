package space

import "time"

type Category string

const (
	CategorySocialHall  Category = "social_hall"
	CategoryBBQZone     Category = "bbq_zone"
	CategorySauna       Category = "sauna"
	CategoryEventHouse  Category = "event_house"
	CategoryGym         Category = "gym"
	CategoryPool        Category = "pool"
	CategorySportsCourt Category = "sports_court"
	CategoryParking     Category = "parking"
	CategoryOther       Category = "other"
)

var categories = []Category{
	CategorySocialHall,
	CategoryBBQZone,
	CategorySauna,
	CategoryEventHouse,
	CategoryGym,
	CategoryPool,
	CategorySportsCourt,
	CategoryParking,
	CategoryOther,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// TimeUnit is the pricing unit of a space.
type TimeUnit string

const (
	TimeUnitHour  TimeUnit = "hour"
	TimeUnitDay   TimeUnit = "day"
	TimeUnitMonth TimeUnit = "month"
)

const (
	hourLength  = time.Hour
	dayLength   = 24 * time.Hour
	monthLength = 30 * dayLength // fixed 30 days, not calendar months
)

func (u TimeUnit) String() string {
	return string(u)
}

func (u TimeUnit) IsValid() bool {
	switch u {
	case TimeUnitHour, TimeUnitDay, TimeUnitMonth:
		return true
	default:
		return false
	}
}

// Length is the billable length of one unit; zero for an unknown unit.
func (u TimeUnit) Length() time.Duration {
	switch u {
	case TimeUnitHour:
		return hourLength
	case TimeUnitDay:
		return dayLength
	case TimeUnitMonth:
		return monthLength
	default:
		return 0
	}
}

func ParseTimeUnit(s string) (TimeUnit, error) {
	u := TimeUnit(s)
	if !u.IsValid() {
		return "", ErrInvalidTimeUnit
	}
	return u, nil
}
