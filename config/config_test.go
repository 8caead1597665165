package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.StackCapacity), ShouldEqual, 64)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("stack.capacity")
			So(result, ShouldEqual, "stack_capacity")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the stack capacity field", t, func() {
		field := Default[key.StackCapacity]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "STACKR_STACK_CAPACITY")
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
			So(string(data), ShouldContainSubstring, `"key":"stack.capacity"`)
			So(string(data), ShouldContainSubstring, `"env":"STACKR_STACK_CAPACITY"`)
		})

		Convey("Pretty should list key, env and default", func() {
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, "stack.capacity")
			So(pretty, ShouldContainSubstring, "STACKR_STACK_CAPACITY")
			So(pretty, ShouldContainSubstring, "64")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse converts values to the type of the default", t, func() {
		v, err := Parse(key.StackCapacity, []string{"128"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 128)

		v, err = Parse(key.SessionEnabled, []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = Parse(key.ReplPrompt, []string{"> "})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "> ")
	})

	Convey("Parse rejects bad values", t, func() {
		cases := []struct {
			key string
			raw []string
		}{
			{key.StackCapacity, []string{"many"}},
			{key.StackCapacity, []string{"-1"}},
			{key.StackCapacity, []string{"2000000000"}},
			{key.SessionEnabled, []string{"maybe"}},
			{key.IconsVariant, []string{"ascii"}},
			{key.LogsLevel, []string{"loud"}},
			{key.ReplPrompt, nil},
			{"stack.depth", []string{"1"}},
		}

		for _, c := range cases {
			_, err := Parse(c.key, c.raw)
			So(err, ShouldNotBeNil)
		}
	})
}
