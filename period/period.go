package period

// TimePeriod is implemented by Day, Week and Month.
type TimePeriod interface {
	FirstDay() Day
	LastDay() Day
	Contains(day Day) bool
	String() string
}

// Sequential is a TimePeriod ordered against its own kind and able to step
// to its neighbours. Intervals and their iterators are built on it.
type Sequential[P any] interface {
	TimePeriod
	Compare(other P) int
	Next() P
	Prev() P
}

var (
	_ Sequential[Day]   = Day{}
	_ Sequential[Week]  = Week{}
	_ Sequential[Month] = Month{}
)
