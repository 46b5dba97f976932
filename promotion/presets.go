package promotion

import "github.com/shopspring/decimal"

// PercentDiscount takes percent off every unit.
func PercentDiscount(name string, percent int64) (*Promotion, error) {
	return New(name, KindPercentDiscount, decimal.NewFromInt(percent))
}

// SecondUnitDiscount takes percent off a single unit when two or more are bought.
func SecondUnitDiscount(name string, percent int64) (*Promotion, error) {
	return New(name, KindSecondUnitDiscount, decimal.NewFromInt(percent))
}

// SecondHalfPrice charges every second unit at half price.
func SecondHalfPrice(name string) (*Promotion, error) {
	return New(name, KindEveryOtherHalfPrice, decimal.Zero)
}

// ThirdOneFree gives away every third unit.
func ThirdOneFree(name string) (*Promotion, error) {
	return New(name, KindEveryThirdFree, decimal.Zero)
}

// SecondTwentyPercentOff is the shop's "Second 20% off!" deal.
func SecondTwentyPercentOff() *Promotion {
	return mustPreset(SecondUnitDiscount("Second 20% off!", 20))
}

// ThirdThirtyPercentOff is the shop's "Third one 30% off!" deal. Despite the
// label it discounts a single unit as soon as two are bought, exactly like
// SecondTwentyPercentOff.
func ThirdThirtyPercentOff() *Promotion {
	return mustPreset(SecondUnitDiscount("Third one 30% off!", 30))
}

func mustPreset(p *Promotion, err error) *Promotion {
	if err != nil {
		panic(err)
	}
	return p
}
