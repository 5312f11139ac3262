// Package view provides the presentational components of the scoreboard.
//
// None of these components hold state. Data flows down as constructor
// arguments and activations flow up through caller-supplied callbacks:
//
//   - [Button]: an Increment Control or the reset control. Renders "+N"
//     (or "Reset") and calls its OnPress callback when pressed.
//   - [RenderScore]: the Score Display, a pure function of one integer.
//   - [TeamPanel]: a label, a Score Display and three Buttons bound to
//     1, 2 and 3, each forwarding its value to the panel's callback.
//   - [BoardView]: two TeamPanels, the "VS" marker and the reset Button,
//     plus a focus index used for keyboard navigation.
package view
