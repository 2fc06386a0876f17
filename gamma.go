package specrend

import "github.com/gogpu/specrend/internal/transfer"

// GammaCorrect converts one linear-light component to the nonlinear signal
// of sys.
//
// With [GammaRec709] the Rec. 709 curve is used: a straight line below
// 0.018 and 1.099*c^0.45 - 0.099 above. Otherwise c^(1/gamma).
// Input should be normalized to [0,1] first.
func GammaCorrect(sys ColorSystem, c float64) float64 {
	if sys.Gamma == GammaRec709 {
		return transfer.Rec709(c)
	}
	return transfer.Power(c, float64(sys.Gamma))
}
