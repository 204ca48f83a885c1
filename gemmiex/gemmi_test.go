package gemmiex

import (
	"runtime"
	"testing"

	"github.com/fractalqb/cliex/cliexting"
)

var examples = cliexting.New("gemmi", fixtureDir())

func TestFprime_wavelength(t *testing.T) {
	// example from utils.rst
	examples.Error(t, `$ gemmi fprime --wavelength=1.2 Se
Element	 E[eV]	Wavelength[A]	   f'   	  f"
Se	10332.0	 1.2    	 -1.4186	0.72389
`)
}

func TestFprime_energy(t *testing.T) {
	examples.Error(t, `$ gemmi fprime --energy=12345 Se
Element	 E[eV]	Wavelength[A]	   f'   	  f"
Se	12345.0	 1.00433	 -3.1985	0.52258
`)
}

func TestSfcalc_check(t *testing.T) {
	examples.Error(t, `$ gemmi sfcalc --check=tests/2242624.hkl tests/2242624.cif
RMSE=0.019256  0.2252%  max|dF|=0.04784  R=0.191%  sum(F^2)_ratio=1.00094
`)
}

func TestSfcalc_noWavelength(t *testing.T) {
	examples.Error(t, `$ gemmi sfcalc --wavelength=0 --check=tests/2242624.hkl tests/2242624.cif
RMSE=0.10942  1.295%  max|dF|=0.1498  R=1.279%  sum(F^2)_ratio=1.01019
`)
}

func TestSfcalc_ciffp(t *testing.T) {
	examples.Error(t, `$ gemmi sfcalc --ciffp --check=tests/2242624.hkl tests/2242624.cif
RMSE=0.019724  0.2307%  max|dF|=0.04863  R=0.196%  sum(F^2)_ratio=1.00101
`)
}

func TestSfcalc_blur5wkd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("MSVC build of gemmi rounds slightly differently")
	}
	// the verbose run prints a timing preamble, only the result line is pinned
	examples.Error(t, `$ gemmi sfcalc --blur=12 --dmin=2.5 --rate=2.5 --rcut=1e-7 --test -v tests/5wkd.pdb
[...]
RMSE=5.6297e-05  0.0001431%  max|dF|=0.0008977  R=0.000%
`)
}
