/*
bnfrule is a console utility printing normalized grammar rules.
Usage is

	bnfrule [-o <format>] [-f <file>] [--config <file>] [--log-level <level>] [--log-format <format>] [<rule>...]

-o <format> defines output format: text (default), json, or yaml;

-f <file> defines a file containing one rule per line, blank lines are skipped, - means standard input;

--config <file> defines a YAML, TOML, or JSON file with default flag values, keys are flag names;

--log-level <level> defines log level: debug, info (default), warn, or error;

--log-format <format> defines log format: text (default), json, or json-pretty;

<rule> defines a rule to normalize, standard input is read line by line if neither rules nor file are given.

Unset flags are also read from BNFRULE_<FLAG> environment variables, e.g. BNFRULE_LOG_LEVEL=debug.
Log is written to standard error. Exit code is 1 if any rule cannot be parsed, 2 on usage or I/O errors.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ava12/bnfrule"
	"github.com/ava12/bnfrule/export"
	"github.com/ava12/bnfrule/internal/env"
	"github.com/ava12/bnfrule/internal/logging"
	"github.com/ava12/bnfrule/parser"
)

const (
	exitOK        = 0
	exitRuleError = 1
	exitUsage     = 2
)

const stdinName = "-"

type params struct {
	format    string
	file      string
	config    string
	logLevel  string
	logFormat string
}

type ruleSource struct {
	name, text string
}

type runner struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	params   params
	exitCode int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := &runner{stdin: stdin, stdout: stdout, stderr: stderr}
	command := r.command()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	command.SetArgs(args)
	e := command.Execute()
	if e != nil {
		fmt.Fprintln(stderr, e.Error())
		return exitUsage
	}

	return r.exitCode
}

func (r *runner) command() *cobra.Command {
	command := &cobra.Command{
		Use:           "bnfrule [flags] [rule...]",
		Short:         "Print grammar rules in normalized form",
		Long:          "Parse BNF-style grammar rules and print them as flat sequences or alternations of flat sequences.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if r.params.config == "" {
				r.params.config = os.Getenv("BNFRULE_CONFIG")
			}
			e := env.ApplyConfig(cmd, r.params.config)
			if e != nil {
				return e
			}

			if !export.IsFormat(r.params.format) {
				return fmt.Errorf("unknown output format %q, expecting one of: %s",
					r.params.format, strings.Join(export.Formats(), ", "))
			}
			if len(args) > 0 && r.params.file != "" {
				return errors.New("cannot use both rule arguments and --file")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return r.execute(args)
		},
	}

	command.SetIn(r.stdin)
	command.SetOut(r.stdout)
	command.SetErr(r.stderr)

	flags := command.Flags()
	flags.StringVarP(&r.params.format, "format", "o", export.Text, "output format: "+strings.Join(export.Formats(), ", "))
	flags.StringVarP(&r.params.file, "file", "f", "", "file containing one rule per line, - for standard input")
	flags.StringVar(&r.params.config, "config", "", "file with default flag values")
	flags.StringVar(&r.params.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&r.params.logFormat, "log-format", logging.TextFormat, "log format: text, json, json-pretty")
	return command
}

func (r *runner) execute(args []string) error {
	logger, e := logging.New(r.stderr, r.params.logLevel, r.params.logFormat)
	if e != nil {
		return e
	}

	rules, e := r.collect(args)
	if e != nil {
		return e
	}

	failed := 0
	for _, rs := range rules {
		log := logger.WithField("source", rs.name)
		log.Debug("parsing rule")

		node, e := parser.ParseString(rs.name, rs.text)
		if e != nil {
			failed++
			var ee *bnfrule.Error
			if errors.As(e, &ee) {
				log = log.WithFields(logrus.Fields{"code": ee.Code, "line": ee.Line, "col": ee.Col})
			}
			log.Error(e.Error())
			continue
		}

		e = export.Write(r.stdout, node, r.params.format)
		if e != nil {
			return e
		}
	}

	logger.WithFields(logrus.Fields{"total": len(rules), "failed": failed}).Debug("done")
	if failed > 0 {
		r.exitCode = exitRuleError
	} else {
		r.exitCode = exitOK
	}
	return nil
}

func (r *runner) collect(args []string) ([]ruleSource, error) {
	if len(args) > 0 {
		rules := make([]ruleSource, len(args))
		for i, arg := range args {
			rules[i] = ruleSource{"arg #" + strconv.Itoa(i+1), arg}
		}
		return rules, nil
	}

	name := r.params.file
	if name == "" || name == stdinName {
		return readRules("stdin", r.stdin)
	}

	f, e := os.Open(name)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	return readRules(name, f)
}

func readRules(name string, input io.Reader) ([]ruleSource, error) {
	var rules []ruleSource
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) != "" {
			rules = append(rules, ruleSource{name + ":" + strconv.Itoa(line), text})
		}
	}
	return rules, scanner.Err()
}
