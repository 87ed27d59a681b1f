package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AssertTestSuite struct {
	suite.Suite
}

func (suite *AssertTestSuite) SetupTest() {
}

func TestAssertTestSuite(t *testing.T) {
	suite.Run(t, new(AssertTestSuite))
}

func (suite *AssertTestSuite) TestShouldBeTrue() {
	suite.Nil(Catch(func() { ShouldBeTrue(true) }))
	v := Catch(func() { ShouldBeTrue(false) })
	suite.NotNil(v)
	suite.Equal("should be true", v.Msg)

	v = Catch(func() { ShouldBeTrue(false, "cell broken") })
	suite.Equal("cell broken", v.Msg)
	suite.Equal("invariant violation: cell broken", v.Error())
}

func (suite *AssertTestSuite) TestShouldBeTruef() {
	suite.Nil(Catch(func() { ShouldBeTruef(true, "cell %d broken", 3) }))
	v := Catch(func() { ShouldBeTruef(false, "cell %d broken", 3) })
	suite.NotNil(v)
	suite.Equal("cell 3 broken", v.Msg)
}

func (suite *AssertTestSuite) TestShouldBeNil() {
	suite.Nil(Catch(func() { ShouldBeNil(nil) }))
	v := Catch(func() { ShouldBeNil(errors.New("boom")) })
	suite.NotNil(v)
	suite.Contains(v.Msg, "boom")

	v = Catch(func() { ShouldBeNil(errors.New("boom"), "load failed") })
	suite.Equal("load failed: [*errors.errorString]boom", v.Msg)
}

func (suite *AssertTestSuite) TestShouldBeNilf() {
	suite.Nil(Catch(func() { ShouldBeNilf(nil, "load %s", "x") }))
	v := Catch(func() { ShouldBeNilf(errors.New("boom"), "load %s", "x") })
	suite.NotNil(v)
	suite.Equal("load x: [*errors.errorString]boom", v.Msg)
}

func (suite *AssertTestSuite) TestUnreachable() {
	v := Catch(func() { Unreachable() })
	suite.NotNil(v)
	suite.Equal("unreachable", v.Msg)
}

func (suite *AssertTestSuite) TestCatchRethrowsForeignPanic() {
	suite.PanicsWithValue("plain", func() {
		Catch(func() { panic("plain") })
	})
}
