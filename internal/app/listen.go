package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"shoplist/internal/speech"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func listenCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Treat each input line as a spoken utterance, with interim results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runListen(cmd)
		},
	}
}

func (rt *runtime) runListen(cmd *cobra.Command) error {
	sh, closeFn, err := rt.newSession()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	recognizer := speech.NewLineRecognizer(cmd.InOrStdin(), sh.ctl.Language(), rt.cfg.InterimResults)
	listener := speech.NewListener(recognizer)
	defer listener.Stop()

	fmt.Fprintf(rt.out, "Listening (%s). Each line is one utterance.\n", sh.ctl.Language())
	sh.render(sh.ctl.Snapshot())

	for {
		session, err := listener.Start(ctx)
		if err != nil {
			return err
		}
		transcript, err := speech.Collect(session, func(partial string) {
			sh.ctl.Interim(partial)
			fmt.Fprintf(rt.out, "... %s\n", partial)
		})
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, speech.ErrCancelled):
			sh.ctl.RecognitionFailed(err)
			log.Info("listen cancelled")
			return nil
		case err != nil:
			sh.ctl.RecognitionFailed(err)
			fmt.Fprintln(rt.out, sh.ctl.Feedback())
			return err
		}

		fmt.Fprintf(rt.out, "Heard: %s\n", transcript)
		if quit := sh.handle(transcript); quit {
			return nil
		}
		recognizer.Language = sh.ctl.Language()
	}
}
