package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "cafepos/pkg/domain-errors"
)

type ValueObjectsSuite struct {
	suite.Suite
}

func TestValueObjectsSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectsSuite))
}

// cpfFrom appends the two check digits to a 9-digit base.
func cpfFrom(base string) string {
	withFirst := base + string(mod11Digit(base, cpfFirstWeights))
	return withFirst + string(mod11Digit(withFirst, cpfSecondWeights))
}

func (s *ValueObjectsSuite) TestCPF() {
	s.Run("accepts known valid digits", func() {
		cpf, err := NewCPF("11144477735")
		s.Require().NoError(err)
		s.Equal("11144477735", cpf.String())
		s.Equal("111.444.777-35", cpf.Format())
	})

	s.Run("trims surrounding whitespace", func() {
		cpf, err := NewCPF(" 11144477735 ")
		s.Require().NoError(err)
		s.True(cpf.Equals(MustCPF("11144477735")))
	})

	s.Run("rejects repeated digits", func() {
		_, err := NewCPF("11111111111")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
	})

	invalid := map[string]string{
		"wrong first check digit":  "11144477745",
		"wrong second check digit": "11144477736",
		"too short":                "1114447773",
		"too long":                 "111444777350",
		"letters":                  "1114447773a",
		"punctuated":               "111.444.777-35",
		"inner space":              "111 444 777 35",
		"empty":                    "",
	}
	for name, raw := range invalid {
		s.Run("rejects "+name, func() {
			_, err := NewCPF(raw)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		})
	}

	s.Run("accepts every generated checksum-valid value", func() {
		r := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 500; i++ {
			base := make([]byte, 9)
			for j := range base {
				base[j] = byte('0' + r.IntN(10))
			}
			raw := cpfFrom(string(base))
			if allSame(raw) {
				continue
			}
			cpf, err := NewCPF(raw)
			s.Require().NoError(err, raw)
			s.Equal(raw, cpf.String())

			broken := []byte(raw)
			broken[10] = byte('0' + (int(broken[10]-'0')+1)%10)
			_, err = NewCPF(string(broken))
			s.Require().Error(err, string(broken))
		}
	})
}

func (s *ValueObjectsSuite) TestCNPJ() {
	s.Run("accepts known valid digits", func() {
		cnpj, err := NewCNPJ("11222333000181")
		s.Require().NoError(err)
		s.Equal("11222333000181", cnpj.String())
		s.Equal("11.222.333/0001-81", cnpj.Format())
	})

	s.Run("trims surrounding whitespace", func() {
		cnpj, err := NewCNPJ("\t11222333000181 ")
		s.Require().NoError(err)
		s.True(cnpj.Equals(MustCNPJ("11222333000181")))
	})

	for name, raw := range map[string]string{
		"repeated digits": "00000000000000",
		"bad checksum":    "11222333000182",
		"short":           "1122233300018",
		"punctuated":      "11.222.333/0001-81",
	} {
		s.Run("rejects "+name, func() {
			_, err := NewCNPJ(raw)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		})
	}
}

func (s *ValueObjectsSuite) TestEmail() {
	s.Run("trims and lower-cases", func() {
		email, err := NewEmail("Test@Example.com ")
		s.Require().NoError(err)
		s.Equal("test@example.com", email.String())
		s.True(email.Equals(MustEmail("test@example.com")))
	})

	for _, raw := range []string{"", "   ", "plainaddress", "a@b", "a@@b.com", "a@b..com", "a b@c.com"} {
		s.Run("rejects "+raw, func() {
			_, err := NewEmail(raw)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		})
	}
}

func (s *ValueObjectsSuite) TestBrazilianPhone() {
	s.Run("normalizes to country code plus digits", func() {
		for _, raw := range []string{"+55 (11) 98765-4321", "11987654321", "5511987654321"} {
			phone, err := NewBrazilianPhone(raw)
			s.Require().NoError(err, raw)
			s.Equal("5511987654321", phone.String())
			s.Equal("+55 (11) 98765-4321", phone.Format())
			s.Equal("11", phone.AreaCode())
		}
	})

	s.Run("accepts landlines", func() {
		phone, err := NewBrazilianPhone("(21) 3456-7890")
		s.Require().NoError(err)
		s.Equal("552134567890", phone.String())
		s.Equal("+55 (21) 3456-7890", phone.Format())
	})

	for name, raw := range map[string]string{
		"foreign country code": "+1 212 555 01234",
		"zero in area code":    "01987654321",
		"mobile without 9":     "11887654321",
		"too short":            "119876543",
		"letters":              "11ABCDEFGHI",
	} {
		s.Run("rejects "+name, func() {
			_, err := NewBrazilianPhone(raw)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalid))
		})
	}
}

func (s *ValueObjectsSuite) TestZeroValues() {
	s.True(CPF{}.IsZero())
	s.True(CNPJ{}.IsZero())
	s.True(Email{}.IsZero())
	s.True(BrazilianPhone{}.IsZero())
	s.Empty(CPF{}.Format())
}
