package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/Zachkp/devfolio/internal/blog"
	"github.com/Zachkp/devfolio/internal/cycler"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	logger := pslog.Ctx(ctx)
	gin.SetMode(a.cfg.Server.Mode)
	gin.DefaultWriter = pslog.LogLogger(logger).Writer()
	gin.DefaultErrorWriter = pslog.LogLoggerWithLevel(logger, pslog.ErrorLevel).Writer()

	srv, err := NewServer(ctx, a.cfg)
	if err != nil {
		return err
	}
	r, err := srv.Routes()
	if err != nil {
		return err
	}
	logger.Info("serving portfolio",
		"addr", a.cfg.Server.Addr,
		"mode", a.cfg.Server.Mode,
		"posts", srv.catalog.Len(),
	)
	return ListenAndServe(ctx, a.cfg.Server.Addr, r)
}

func newPostsCmd(a *app) *cobra.Command {
	var (
		q        blog.Query
		listTags bool
	)
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List technical blog posts matching a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := blog.MustCatalog(blog.DefaultPosts())
			out := cmd.OutOrStdout()
			if listTags {
				for _, t := range catalog.Tags() {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			res := catalog.Search(q)
			for _, p := range res.Posts {
				fmt.Fprintf(out, "%-20s %s [%s]\n", p.ID, p.Title, strings.Join(p.Tags, ", "))
			}
			fmt.Fprintln(out, res.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Text, "q", "", "free text to match against titles and tags")
	cmd.Flags().StringVarP(&q.Tag, "tag", "t", "", "only posts carrying this exact tag")
	cmd.Flags().BoolVar(&listTags, "tags", false, "list every tag instead of posts")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "Render a post's markdown to HTML on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := NewServer(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			p, ok := srv.catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("post %q not found", args[0])
			}
			html, err := srv.renderPost(p)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", p.ID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
}

func newCycleCmd(a *app) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "cycle [items...]",
		Short: "Print the typewriter frames for items (defaults to the hero roles)",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				items = HeroRoles
			}
			out, err := cycler.Preview(items, cyclerConfig(a.cfg.Typewriter), frames)
			if err != nil {
				return err
			}
			for _, f := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %-8s %q\n", f.Index, f.Mode, f.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 40, "number of frames to print")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML, or write it to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write != "" {
				if err := a.cfg.Save(write); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", write)
				return nil
			}
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&write, "write", "w", "", "write the configuration to this path instead of stdout")
	return cmd
}
