package cmd

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"

	"go.dedis.ch/sssrecover/recovery"
	"go.dedis.ch/sssrecover/recovery/impl"
	"go.dedis.ch/sssrecover/types"
)

// -----------------------------------------------------------------------------
// Interactive CMD Prompt

var actionOpts = []string{
	"🔑 Recover a secret",
	"🧮 Switch interpolation method",
	"🍃 Exit",
}

var methodOpts = []string{
	string(recovery.MethodLagrange),
	string(recovery.MethodVandermonde),
}

// session is the state of an interactive run.
type session struct {
	out  io.Writer
	conf recovery.Configuration
	json bool
	done bool
}

var actions = map[string]func(*session) error{
	actionOpts[0]: recoverSecret,
	actionOpts[1]: switchMethod,
	actionOpts[2]: exitSession,
}

// -----------------------------------------------------------------------------
// Start CMD

// StartCMD runs the interactive prompt until the user exits.
func StartCMD(out io.Writer, opts Options) error {
	conf, err := opts.Configuration()
	if err != nil {
		return err
	}

	s := session{out: out, conf: conf, json: opts.JSON}

	fmt.Fprintln(out, "##########################################")
	fmt.Fprintln(out, "######    Shamir secret recovery    ######")
	fmt.Fprintln(out, "##########################################")
	fmt.Fprintln(out, "Method: ", conf.Method)
	fmt.Fprintln(out)

	var action string
	for !s.done {
		prompt := &survey.Select{
			Message: "What do you want to do ?",
			Options: actionOpts,
		}

		err := survey.AskOne(prompt, &action)
		if err != nil {
			return err
		}

		method := actions[action]
		err = method(&s)
		if err != nil {
			fmt.Fprintln(out, "err:", err)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------
// CMD Actions

func recoverSecret(s *session) error {
	path := ""
	err := survey.AskOne(&survey.Input{
		Message: "Path of the test case:",
	}, &path, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	tc, err := types.LoadTestCase(path)
	if err != nil {
		return err
	}

	solver, err := impl.NewSolver(s.conf)
	if err != nil {
		return err
	}

	result, err := solver.Solve(tc)
	if err != nil {
		return err
	}

	if !s.json {
		fmt.Fprintf(s.out, "Used keys %v (degree %d, %d points available)\n",
			result.Keys, result.Degree, result.TotalPoints)
	}
	return printResult(s.out, result, s.json)
}

func switchMethod(s *session) error {
	name := ""
	err := survey.AskOne(&survey.Select{
		Message: "Interpolation method:",
		Options: methodOpts,
		Default: string(s.conf.Method),
	}, &name)
	if err != nil {
		return err
	}

	method, err := recovery.ParseMethod(name)
	if err != nil {
		return err
	}
	s.conf.Method = method
	fmt.Fprintln(s.out, "Method: ", method)
	return nil
}

func exitSession(s *session) error {
	s.done = true
	fmt.Fprintln(s.out, "bye 👋")
	return nil
}
